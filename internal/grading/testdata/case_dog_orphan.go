package main

import "fmt"

type Animal struct{}

func (Animal) speak() { fmt.Println("The animal makes a sound.") }

type Dog struct {
	name string
}

func (Dog) speak() { fmt.Println("The dog barks.") }

type Cat struct {
	legs int
}

func (Cat) speak() { fmt.Println("The cat meows.") }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
