/*
Package ritotex implements the League-style TEX texture container and the
DDS container it interoperates with, including BC1 (DXT1) and BC3 (DXT5)
block compression and decompression.

TEX stores a 12-byte header followed by the mip chain in reversed order
(smallest level first). DDS stores the standard 128-byte header, an
optional DX10 extended header, and the top-level payload; mip levels
beyond the top one are carried through opaquely but never parsed.

Every operation is a pure computation over in-memory byte slices: no
I/O, no shared state. Decode and encode calls are safe to run
concurrently without coordination.
*/
package ritotex
