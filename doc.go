/*
Package rttex decodes RTPACK/RTTEX game textures into RGBA images.

An RTTEX file is either a bare texture blob starting with the "RTTXTR" tag
or an "RTPACK" container wrapping such a blob, optionally zlib compressed.
The texture blob carries a fixed header, a table of mip headers and the base
level pixels stored bottom-up.

Only the base level of RGBA8 (GL_UNSIGNED_BYTE) textures is decoded. Other
formats are recognized by the header parser but rejected at pixel extraction.

Decoding distinguishes "not an image" from "broken image": DecodeBytes
returns ok=false with a nil error when the data is not a texture (or the
package payload is empty), and a wrapped sentinel error when it is corrupt.
*/
package rttex
