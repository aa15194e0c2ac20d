// Package charwidth classifies code points by display width.
//
// Every code point maps to exactly one Class: Narrow and Ambiguous occupy
// one terminal column, Wide and Emoji occupy two, Ignorable and Other occupy
// none. Ignorable and Other additionally drive escape policy: ignorables are
// dropped in display mode and Other-class code points are numerically
// escaped.
//
// The width-specific property data (East Asian Width, emoji presentation,
// default ignorables) is bundled as static sorted range tables; general
// category data comes from the stdlib unicode tables. All tables are
// immutable and safe for concurrent reads.
package charwidth
