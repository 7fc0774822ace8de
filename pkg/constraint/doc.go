/*
Package constraint defines the predicates used to restrict the hidden
labels and surface forms allowed at each position of a constrained
Markov model, along with a small line-oriented format for writing one
constraint pair per sequence position.

Constraints are a closed set of variants behind a single value type;
combining them with AnyOf and AllOf covers the compound cases without
any dynamic dispatch.
*/
package constraint
