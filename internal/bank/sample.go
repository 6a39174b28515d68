package bank

// Sample returns the bundled question set used when nothing else is loaded.
func Sample() Bank {
	return Bank{
		{
			ID:           "1",
			Text:         "What is Go's built-in concurrency primitive for communication?",
			Choices:      []string{"channel", "mutex", "thread", "callback"},
			CorrectIndex: 0,
			Explanation:  "Channels carry values between goroutines.",
		},
		{
			ID:           "2",
			Text:         "What is the chemical formula of water?",
			Choices:      []string{"H2O", "CO2", "O2", "NaCl"},
			CorrectIndex: 0,
			Explanation:  "Water is H2O.",
		},
		{
			ID:           "3",
			Text:         "Roughly how long does the Earth take to orbit the Sun?",
			Choices:      []string{"1 year", "1 month", "1 week", "1 day"},
			CorrectIndex: 0,
			Explanation:  "One orbit is a solar year, about 365 days.",
		},
		{
			ID:           "4",
			Text:         "Which of these is a prime number?",
			Choices:      []string{"15", "21", "17", "9"},
			CorrectIndex: 2,
			Explanation:  "17 is prime.",
		},
		{
			ID:           "5",
			Text:         "About how fast does light travel?",
			Choices:      []string{"300,000 km/s", "30,000 km/s", "3,000 km/s", "300 km/s"},
			CorrectIndex: 0,
			Explanation:  "Light travels at roughly 300,000 kilometres per second.",
		},
	}
}
