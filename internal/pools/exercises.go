// ABOUTME: Exercise catalogs per difficulty tier.
// ABOUTME: Each tier holds at least eight movements so a day can draw four distinct ones.
package pools

import (
	"net/url"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// demoSearchBase links each movement to a video search for its form demo.
const demoSearchBase = "https://www.youtube.com/results?search_query="

var exercisesByDifficulty = map[models.Difficulty][]models.Exercise{
	models.DifficultyBeginner: {
		{Name: "Bodyweight Squats", Reps: "3 sets of 10 reps", Description: "Feet shoulder-width apart, sit back until thighs are near parallel, then stand."},
		{Name: "Wall Push-ups", Reps: "3 sets of 10 reps", Description: "Hands on a wall at chest height, lower your chest toward the wall and press back."},
		{Name: "Glute Bridges", Reps: "3 sets of 12 reps", Description: "Lie on your back with knees bent and lift your hips until your body forms a straight line."},
		{Name: "Standing Calf Raises", Reps: "3 sets of 15 reps", Description: "Rise onto the balls of your feet, pause, and lower slowly."},
		{Name: "Bird Dog", Reps: "3 sets of 8 reps each side", Description: "On hands and knees, extend the opposite arm and leg while keeping the back flat."},
		{Name: "Forearm Plank", Reps: "3 x 20 seconds", Description: "Hold a straight line from head to heels on your forearms and toes."},
		{Name: "Step-ups", Reps: "3 sets of 8 reps each leg", Description: "Step onto a low, sturdy platform and drive through the front heel."},
		{Name: "Brisk Walking", Reps: "15 minutes", Description: "Walk at a pace where talking is possible but singing is not."},
		{Name: "Seated Knee Tucks", Reps: "3 sets of 10 reps", Description: "Sit on the edge of a chair, lean back slightly and pull the knees toward the chest."},
		{Name: "Chair Dips", Reps: "2 sets of 8 reps", Description: "Hands on a chair edge behind you, bend the elbows to lower your hips and press back up."},
	},
	models.DifficultyIntermediate: {
		{Name: "Push-ups", Reps: "3 sets of 12 reps", Description: "Hands under shoulders, lower your chest to just above the floor and press up."},
		{Name: "Walking Lunges", Reps: "3 sets of 10 reps each leg", Description: "Step forward into a lunge, both knees at about 90 degrees, then bring the back leg through."},
		{Name: "Jump Squats", Reps: "3 sets of 12 reps", Description: "Squat down and explode upward, landing softly back into the squat."},
		{Name: "Mountain Climbers", Reps: "3 x 30 seconds", Description: "From a high plank, drive the knees toward the chest alternately at a steady pace."},
		{Name: "Side Plank", Reps: "3 x 30 seconds each side", Description: "Support yourself on one forearm with hips lifted in a straight line."},
		{Name: "Single-leg Glute Bridge", Reps: "3 sets of 10 reps each leg", Description: "Bridge with one foot planted and the other leg extended."},
		{Name: "Superman Hold", Reps: "3 x 20 seconds", Description: "Lie face down and lift arms, chest and legs off the floor."},
		{Name: "Skipping", Reps: "3 x 60 seconds", Description: "Skip rope or mimic the motion with light, quick hops."},
		{Name: "Bulgarian Split Squats", Reps: "3 sets of 8 reps each leg", Description: "Rear foot elevated on a bench, lower the back knee toward the floor."},
		{Name: "Bicycle Crunches", Reps: "3 sets of 20 reps", Description: "Alternate elbow to opposite knee while extending the other leg."},
	},
	models.DifficultyAdvanced: {
		{Name: "Burpees", Reps: "4 sets of 12 reps", Description: "Squat, kick back to a plank, do a push-up, jump the feet in and leap up."},
		{Name: "Pistol Squat Progression", Reps: "3 sets of 6 reps each leg", Description: "Single-leg squat to a box or full depth with the free leg extended."},
		{Name: "Decline Push-ups", Reps: "4 sets of 12 reps", Description: "Feet elevated on a bench, perform push-ups with a tight core."},
		{Name: "Jumping Lunges", Reps: "4 sets of 10 reps each leg", Description: "Alternate lunges with a jump switch in the air."},
		{Name: "Plank to Push-up", Reps: "3 sets of 10 reps", Description: "Move from forearm plank to high plank one arm at a time and back."},
		{Name: "Tuck Jumps", Reps: "3 sets of 10 reps", Description: "Jump and pull the knees to the chest, land softly."},
		{Name: "Hollow Body Hold", Reps: "3 x 40 seconds", Description: "Lie on your back, lift shoulders and legs, lower back pressed into the floor."},
		{Name: "Sprint Intervals", Reps: "8 x 20 seconds", Description: "All-out sprint followed by 40 seconds of walking recovery."},
		{Name: "Pike Push-ups", Reps: "3 sets of 10 reps", Description: "Hips high in an inverted V, lower the head toward the floor and press up."},
		{Name: "Russian Twists", Reps: "3 sets of 30 reps", Description: "Seated with feet lifted, rotate the torso side to side."},
	},
}

func init() {
	for _, pool := range exercisesByDifficulty {
		for i := range pool {
			if pool[i].MediaURL == "" {
				pool[i].MediaURL = DemoURL(pool[i].Name)
			}
		}
	}
}

// DemoURL returns the form demonstration link for an exercise name.
func DemoURL(name string) string {
	return demoSearchBase + url.QueryEscape(name+" exercise form")
}

// Exercises returns the exercise pool for a difficulty tier, falling back to
// beginner for unknown tiers. The slice is shared; callers must copy entries
// before changing them.
func Exercises(d models.Difficulty) []models.Exercise {
	if ex, ok := exercisesByDifficulty[d]; ok {
		return ex
	}
	return exercisesByDifficulty[models.DifficultyBeginner]
}
