package main

import (
	"log"
	"os"

	"painttanks/server"
)

func main() {
	if err := server.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
