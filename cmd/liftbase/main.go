// Command liftbase is a small CLI over the exercise catalog store: it can
// seed, inspect, and edit a catalog database from the shell.
package main

func main() {
	Execute()
}
