// Command mealctl is the operator CLI: schema migrations, seeding, and quick
// views of the calendar and shopping list straight from the store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
