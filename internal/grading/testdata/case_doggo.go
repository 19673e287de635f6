package main

import "fmt"

type Animal struct{}

type Dog struct{ Animal }

type Doggo struct{ Dog }

func (Doggo) speak() { fmt.Println("The doggo barks.") }

type Cat struct{ Animal }

func (Cat) speak() { fmt.Println("The cat meows.") }

func main() {
	Doggo{}.speak()
	Cat{}.speak()
}
