package main

import (
	"os"

	"github.com/ribgsilva/note-keeper/app/cmd/notes"
	"github.com/ribgsilva/note-keeper/app/cmd/schema"

	_ "github.com/go-sql-driver/mysql"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manage the todo table")
	println("\tnotes\t\t\t- Export and import saved notes")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "notes":
		notes.Run(os.Args[2:])
	default:
		listCommands()
	}
}
