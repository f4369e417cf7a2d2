// Package meta holds defaults shared by the engine and experiments.
package meta

// MaxTurns caps the number of moves in a simulated game.
const MaxTurns = 500

// Goroutines defines the default number of games simulated in parallel.
const Goroutines = 8

// Games defines the default number of games per experiment.
const Games = 100

// Detectives defines the default number of detectives in a simulated game.
const Detectives = 5
