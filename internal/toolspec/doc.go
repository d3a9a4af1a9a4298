/*
Package toolspec holds the table of tool identifiers a compiler driver can
forward options to, and the flag prefix each one uses.

The table is an HCL document compiled into the binary:

	tool "as" {
	  description = "assembler"
	  prefix      = "-W${substr(tool, 0, 1)},"
	}

Each prefix is evaluated with the block label bound to the variable `tool`,
so `as` yields `-Wa,` and `ld` yields `-Wl,`. Only the tools listed in the
embedded table are accepted; there is no way to extend it at runtime.
*/
package toolspec
