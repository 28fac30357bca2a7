package main

import "github.com/emilythestrangee/news-api/backend/internal/cli"

func main() {
	cli.Execute()
}
