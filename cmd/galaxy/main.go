// Command galaxy opens the project galaxy in a desktop window.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
