package main // want `One or more classes \(Animal, Dog, Cat\) are missing`

import "fmt"

type Dog struct{}

func (Dog) speak() { fmt.Println("Woof") }

type Cat struct{}

func (Cat) speak() { fmt.Println("Meow") }

func main() {
	Dog{}.speak()
	Cat{}.speak()
}
