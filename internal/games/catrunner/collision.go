package catrunner

// firstCollision returns the index of the first obstacle, in spawn order,
// whose hitbox overlaps the cat's, or -1.
func firstCollision(c Character, obstacles []Obstacle) int {
	hit := c.Hitbox()
	for i, o := range obstacles {
		if hit.Overlaps(o.Hitbox()) {
			return i
		}
	}
	return -1
}
