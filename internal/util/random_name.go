package util

import (
	"fmt"

	"goldenflower/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Bold", "Quiet", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Golden", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Sly",
	"Brave", "Patient", "Sleepy", "Jumping", "Running", "Bluffing", "Blind", "Daring",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Crane", "Tiger", "Panda", "Otter", "Heron", "Fox", "Wolf", "Dragon",
	"Bear", "Carp", "Monkey", "Rabbit", "Snake", "Horse", "Goat", "Rooster", "Ox", "Pig", "Rat",
	"Hedgehog", "Okapi", "Eagle", "Deer",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	adjectivesIndex := gen.Intn(len(adjectives))
	animalsIndex := gen.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}

// GetRandomNames returns n distinct random names
func GetRandomNames(gen rng.Generator, n int) []string {
	if max := len(adjectives) * len(animals); n > max {
		panic(fmt.Sprintf("cannot make %d distinct names, max is %d", n, max))
	}

	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := GetRandomName(gen)
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
