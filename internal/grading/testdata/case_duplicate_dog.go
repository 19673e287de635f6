package main

import "fmt"

type Animal struct{}

type Dog struct{}

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("The cat meows.") }

func main() {
	type Dog struct{ Animal }
	Cat{}.speak()
}
