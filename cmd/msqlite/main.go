package main

import (
	"context"
	"log"

	"github.com/msqlite/msqlite/internal/shell"
)

func main() {
	if err := shell.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
