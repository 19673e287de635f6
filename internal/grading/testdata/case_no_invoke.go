package main

import "fmt"

type Animal struct{}

func (Animal) speak() { fmt.Println("The animal makes a sound.") }

type Dog struct{ Animal }

func (Dog) speak() { fmt.Println("The dog barks.") }

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("The cat meows.") }

func main() {
	fmt.Println(Dog{}, Cat{})
}
