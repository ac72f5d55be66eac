/*
The package tpdu decodes SMS transport layer protocol data units (TPDUs) from
their hex representation into typed records. This implementation is solely
based on:

	[GSM0340] ETSI GSM 03.40 (ETS 300 901), version 5.8.1
	[GSM0338] ETSI GSM 03.38 (ETS 300 900), version 5.6.1

Abbreviations:
TPDU: Transport layer Protocol Data Unit
SMSC: Short Message Service Centre
DCS: Data Coding Scheme
UDH: User Data Header
TOA: Type Of Address

Decoding is a pure function of the input hex string: one forward pass over a
single cursor, no shared state between calls. Independent decodes may run
concurrently without coordination.

Restrictions:
This package is decode only, TPDUs cannot be constructed with it. Only the
SMS-DELIVER and SMS-SUBMIT message types are assembled into complete records.
The data coding scheme is reduced to the character encoding, coding groups
beyond 8 bit data and UCS-2 are treated as the 7 bit default alphabet.
Concatenation metadata is extracted, but parts are not reassembled.
*/
package tpdu
