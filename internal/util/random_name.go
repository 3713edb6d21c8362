package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Quiet", "Bold", "Sly", "Golden", "Silver", "Midnight", "Smiling", "Patient", "Restless",
	"High-Rolling", "Cautious", "Daring", "Humble", "Grand", "Velvet", "Marble", "Neon", "Steady", "Wandering",
}

var animals = []string{
	"Tiger", "Dragon", "Panda", "Fox", "Crane", "Koi", "Otter", "Raven", "Lynx", "Turtle",
	"Heron", "Shark", "Sparrow", "Badger", "Mongoose", "Ocelot", "Ibex", "Marmot", "Gecko", "Viper",
}

// GetRandomName returns a random table name by combining an adjective with an animal.
// Used when a participant registers without providing a name.
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], animals[random.Intn(len(animals))])
}
