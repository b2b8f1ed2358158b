package engine

import "github.com/comitanigiacomo/kanso-widgets/internal/core/domain"

var DefaultPhrases = []string{
	"Every day is a fresh start.",
	"Progress, not perfection.",
	"Small steps every day.",
	"You're capable of amazing things.",
	"Make today count.",
	"Believe in yourself.",
	"Keep moving forward.",
	"Your only limit is you.",
	"Dream big, start small.",
	"Embrace the journey.",
	"Stay focused and never give up.",
	"The best time is now.",
	"You are enough.",
	"Create your own sunshine.",
	"Be fearless in pursuit of your goals.",
	"Growth happens outside comfort zones.",
	"Consistency is key.",
	"Today's efforts, tomorrow's results.",
	"You've got this.",
	"Be the energy you want to attract.",
	"Start where you are.",
	"Trust the process.",
	"Make it happen.",
	"You're stronger than you think.",
	"One day at a time.",
	"Rise and shine.",
	"Positive mind, positive life.",
	"Your potential is endless.",
	"Keep going, you're doing great.",
	"Success is a journey.",
}

func SelectQuote(index int, phrases []string) (string, error) {
	n := len(phrases)
	if n == 0 {
		return "", domain.ErrEmptyPhraseList
	}
	return phrases[((index%n)+n)%n], nil
}
