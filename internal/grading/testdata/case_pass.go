package main

import "fmt"

type Animal struct {
	species string
}

func (a Animal) speak() {
	fmt.Println("The animal makes a sound.")
}

type Dog struct {
	Animal
}

func (d Dog) speak() {
	fmt.Println("The dog barks.")
}

type Cat struct {
	Animal
}

func (c Cat) speak() {
	fmt.Println("The cat meows.")
}

func main() {
	dog := Dog{}
	cat := Cat{}

	dog.speak()
	cat.speak()
}
