// Command animals is the reference solution of the hierarchical inheritance
// assignment hiergrade checks: two types derived from a common base, each
// redefining the base behavior.
package main

import "fmt"

// Animal is the base of the hierarchy.
type Animal struct {
	species string
}

func newAnimal() Animal {
	return Animal{species: "Unknown species"}
}

func (a Animal) speak() {
	fmt.Println("The animal makes a sound.")
}

// Dog inherits from Animal.
type Dog struct {
	Animal
}

func (d Dog) speak() {
	fmt.Println("The dog barks.")
}

// Cat inherits from Animal.
type Cat struct {
	Animal
}

func (c Cat) speak() {
	fmt.Println("The cat meows.")
}

func main() {
	dog := Dog{Animal: newAnimal()}
	cat := Cat{Animal: newAnimal()}

	dog.speak()
	cat.speak()
}
