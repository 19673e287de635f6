package main

import "fmt"

type Animal struct{}

func (Animal) speak() { fmt.Println("...") }

type Dog struct{ Animal }

func (Dog) speak() { fmt.Println("Woof") }

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("Meow") }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
