package main

import "github.com/mullermatej/food-tracker-mobile-app/cmd/foodtrack"

func main() {
	foodtrack.Execute()
}
