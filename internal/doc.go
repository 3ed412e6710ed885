// Package internal provides the spelling pipeline shared by the spellck
// analyzer and the standalone command.
//
// # Architecture Overview
//
//	  +---------------+              +-----------------+
//	  |  analyzer.go  |              |   cmd/spellck   |
//	  | (go/analysis) |              |     (cobra)     |
//	  +-------+-------+              +--------+--------+
//	          |                               |
//	          |  dictionary from env          |  dictionary from flags
//	          |                               |  and .spellck.toml
//	          +---------------+---------------+
//	                          |
//	                 +--------v---------+
//	                 |      Runner      |  one package at a time
//	                 +--------+---------+
//	                          |
//	      +-------------------+-------------------+
//	      |                   |                   |
//	+-----v------+   +--------v--------+   +------v-------+
//	| directives |   | collect         |   | checker      |
//	| ignore     |-->| exported names  |-->| Split/Extract|
//	| words      |   | and doc records |   | + dictionary |
//	+------------+   +-----------------+   +------+-------+
//	                                              |
//	                                       +------v-------+
//	                                       | Diagnostics  |
//	                                       +--------------+
//
// # Execution Flow
//
//  1. [Runner.Run] receives the files of one package
//  2. Generated and _test.go files are skipped
//  3. //spellck:ignore comments are indexed per file
//  4. //spellck:words comments extend the dictionary for this package
//  5. [collect.Collector] walks the top-level declarations and yields one
//     record per exported name and one per doc comment
//  6. [checker.Checker] splits identifiers, extracts doc words and keeps
//     the words the dictionary does not contain
//  7. Diagnostics and unused ignore directives are returned to the caller,
//     which reports them through the analysis pass or the report package
//
// # Dictionaries
//
// A dictionary is the union of word list files and, unless disabled, the
// built-in list. It is immutable:
//
//	dict, err := dictionary.Build(sources, true)
//	pkgDict := dict.With("frobnicate") // dict is unchanged
package internal
