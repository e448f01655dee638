// Package main provides the encapsulab CLI, which replays encapsulation
// walkthroughs against the example entities.
package main

func main() {
	Execute()
}
