// meta/meta.go
package meta

// DefaultSeed seeds an agent's random source when its config has no "seed".
const DefaultSeed = 42

// DefaultExploration is the UCT constant c when the config has no "c".
const DefaultExploration = 1.0

// DefaultIterations is the search budget per move when the config has no "scount".
const DefaultIterations = 10

// MaxTurns bounds the length of games played by experiments.
const MaxTurns = 300
