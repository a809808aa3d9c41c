package main

import (
	"fmt"
	"log"
)

func process(values []int) int {
	fmt.Println("debug: entering process")
	total := 0
	for _, v := range values {
		total += v
		fmt.Printf("debug: v=%d total=%d\n",
			v, total)
	}

	// fmt.Println("debug: commented out")
	fmt.Println("processed", len(values), "values")
	log.Printf("[DEBUG] total is %d", total)

	return total
}

func main() {
	result := process([]int{1, 2, 3})
	println(result)
	fmt.Println("done:", result) // dbgc:ignore
	fmt.Println("debug: kept") // dbgc:ignore
}
