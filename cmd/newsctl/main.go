// Command newsctl administers the NC News database: it applies and rolls back
// migrations and loads seed data.
package main

import "github.com/pkordes/nc-news/backend/cmd/newsctl/commands"

func main() {
	commands.Execute()
}
