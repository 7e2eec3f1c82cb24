/*
Package glrnlp is a generalized-LR (GLR) parsing toolbox for bidirectional,
feature-unifying syntax-directed translation.

A grammar author supplies context-free rules annotated with an input side, a
paired output side, feature constraints on nonterminals, and optional
per-alternative costs. Given a token sequence, the package:

■ rule: owns the immutable compiled rule set and a terminal-phrase trie for
multi-token lexical entries.

■ automaton: compiles rules into an LR(0) item-set DFA, together with
nullable-symbol, reduction and empty-reduction tables.

■ recognizer: runs a Tomita-style GLR chart parser over the DFA, recording
every successful derivation in position-keyed node and edge tables.

■ forest: projects the recognizer's edges into a packed parse forest.

■ unify: filters the forest bottom-up by feature-structure unification.

■ translate: drives a second, output-side derivation top-down from each
surviving rule, expanding output-only nonterminals.

■ enumerate: flattens the translated forest into ranked (string, cost)
pairs, applying a caller-supplied post-processor; all candidates are
computed before the first is returned.

The root package wires these together as Compile / Parse / MakeForest /
UnifyUp / Translate / Enumerate, mirroring the stage order above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright (c) 2017-2021, Norbert Pillmayer
Copyright (c) 2026, the glrnlp contributors
*/
package glrnlp
