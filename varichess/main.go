// Command varichess plays standard chess, Atomic, and King-of-the-Hill
// from the terminal against its own search, or between two human players.
package main

import (
	inter "varichess/interface"
)

func main() {
	inter.Run()
}
