/*
The package gsm implements the character and number codecs used in SMS PDUs
according to the GSM 03.38 specification. This implementation is solely based on:

	[GSM0338] ETSI GSM 03.38 (ETS 300 900), version 5.6.1
	[GSM0340] ETSI GSM 03.40 (ETS 300 901), version 5.8.1

It covers the packed 7 bit default alphabet including its extension table,
the UCS-2 encoding of the user data, the semi-octet representation of
telephone numbers, and the service centre time stamp.

Restrictions:
National language shift tables are not supported, the 7 bit extension table
is the default one from [GSM0338] 6.2.1.1.
*/
package gsm
