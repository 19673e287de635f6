package main // want `'speak' in Dog or Cat\) not overridden`

import "fmt"

type Animal struct{}

func (Animal) speak() { fmt.Println("...") }

type Dog struct{ Animal }

type Cat struct{ Animal }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
