package main

import "fmt"

type Animal struct{}

type Dog struct{ Animal }

func (Dog) speak() { fmt.Println("Woof") }

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("Meow") }

func main() { // want `Methods 'speak' not executed in the main method`
	fmt.Println(Dog{}, Cat{})
}
