package main

import "fmt"

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
	Dog{}.speak()
	Cat{}.speak()
}
