// Package chef implements the recipe execution core for the Chef
// esoteric programming language: lexical normalization of recipe text,
// the title/ingredients/method/serves section state machine, the verb
// dispatcher, and the mixing-bowl/baking-dish execution engine.
//
// The only entry point most callers need is Execute, which takes the
// full text of a recipe (plus any auxiliary sous-chef recipes appended
// to it) and returns the ordered list of dishes it serves. Reading the
// recipe from disk, parsing command-line flags, and printing the result
// are all left to callers — see cmd/chef for a CLI built on top.
package chef
