package puzzles

import "github.com/eugenenazirov/puzzles/internal/calories"

// calorieCounting: find the elf carrying the most calories, then the total
// carried by the top three.
func calorieCounting() Puzzle {
	return Puzzle{
		Day:   1,
		Name:  "Calorie Counting",
		Part1: mostCalories,
		Part2: topThreeCalories,
		Sample: []string{
			"1000", "2000", "3000", "",
			"4000", "",
			"5000", "6000", "",
			"7000", "8000", "9000", "",
			"10000",
		},
		Want: Answer{Part1: 24000, Part2: 45000},
	}
}

func mostCalories(lines []string) (int, error) {
	groups, err := calories.Groups(lines)
	if err != nil {
		return 0, err
	}
	most, err := calories.Max(groups)
	if err != nil {
		return 0, err
	}
	return int(most), nil
}

func topThreeCalories(lines []string) (int, error) {
	groups, err := calories.Groups(lines)
	if err != nil {
		return 0, err
	}
	return int(calories.TopSum(groups, 3)), nil
}
