/*
Package tagasn1 implements the tagged-object core of an ASN.1 encoder/decoder:
the Tag/Length codec, a small schema-free Primitive tree, the TaggedObject
explicit/implicit wrapper, the EXTERNAL type, and a pull-style stream parser,
across the Basic (BER), Definite-Length (DL) and Distinguished (DER) encoding
rules of ITU-T X.690.

The package is deliberately schema-free: it has no notion of an ASN.1 module
and does not decode by consulting a Go struct's tags. Callers who know what a
given TLV is supposed to mean (from an external schema) drive that knowledge
through [TaggedObject.LoadExplicit], [TaggedObject.LoadImplicit] or the
[StreamParser] equivalents; callers with no such knowledge get back the raw
tag/length/value structure and nothing more.
*/
package tagasn1
