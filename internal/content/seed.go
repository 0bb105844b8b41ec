package content

import "radaquest/internal/models"

// Seed returns the built-in cybersecurity and data-protection question
// bank. The bank is static; tests assert that every seeded question passes
// validation.
func Seed() []models.Question {
	return []models.Question{
		&models.MSQQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "personal-data-msq",
				Type:        models.TypeMSQ,
				Difficulty:  models.DifficultyBeginner,
				Prompt:      "Which of the following count as personal data?",
				Explanation: "Personal data is any information relating to an identified or identifiable person. Weather reports describe no one.",
				Points:      20,
			},
			Options: []models.Option{
				{ID: "email", Text: "An email address", IsCorrect: true},
				{ID: "ip", Text: "Your home IP address", IsCorrect: true},
				{ID: "weather", Text: "Tomorrow's weather forecast", IsCorrect: false},
				{ID: "idnum", Text: "A national ID number", IsCorrect: true},
			},
		},
		&models.MSQQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "password-practices-msq",
				Type:        models.TypeMSQ,
				Difficulty:  models.DifficultyIntermediate,
				Prompt:      "Select every practice that makes a password safer.",
				Explanation: "Length and uniqueness matter most. Reusing a password means one breach unlocks every account.",
				Points:      20,
			},
			Options: []models.Option{
				{ID: "long", Text: "Use a long passphrase", IsCorrect: true},
				{ID: "unique", Text: "Use a different password per site", IsCorrect: true},
				{ID: "reuse", Text: "Reuse one strong password everywhere", IsCorrect: false},
				{ID: "manager", Text: "Store passwords in a password manager", IsCorrect: true},
			},
		},
		&models.MSQQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "mfa-factors-msq",
				Type:        models.TypeMSQ,
				Difficulty:  models.DifficultyExpert,
				Prompt:      "Which of these are authentication factors?",
				Explanation: "Factors are something you know, have, or are. A username is an identifier, not a factor.",
				Points:      25,
			},
			Options: []models.Option{
				{ID: "know", Text: "Something you know (a PIN)", IsCorrect: true},
				{ID: "have", Text: "Something you have (a hardware key)", IsCorrect: true},
				{ID: "are", Text: "Something you are (a fingerprint)", IsCorrect: true},
				{ID: "username", Text: "Your username", IsCorrect: false},
			},
		},
		&models.ClickSelectQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "phishing-sign-click",
				Type:        models.TypeClickSelect,
				Difficulty:  models.DifficultyBeginner,
				Prompt:      "An email urges you to 'verify your account within 24 hours' via a link. What is the safest reaction?",
				Explanation: "Urgency is the classic phishing lever. Go to the site directly instead of following the link.",
				Points:      10,
			},
			Options: []models.Option{
				{ID: "click", Text: "Click the link quickly before the deadline", IsCorrect: false},
				{ID: "reply", Text: "Reply asking if the email is genuine", IsCorrect: false},
				{ID: "direct", Text: "Open the site yourself and check your account there", IsCorrect: true},
				{ID: "forward", Text: "Forward it to friends as a warning", IsCorrect: false},
			},
		},
		&models.ClickSelectQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "https-padlock-click",
				Type:        models.TypeClickSelect,
				Difficulty:  models.DifficultyIntermediate,
				Prompt:      "What does the padlock icon next to a URL actually guarantee?",
				Explanation: "The padlock means the connection is encrypted in transit. It says nothing about who runs the site.",
				Points:      15,
			},
			Options: []models.Option{
				{ID: "trust", Text: "The site is trustworthy", IsCorrect: false},
				{ID: "encrypted", Text: "Traffic to the site is encrypted", IsCorrect: true},
				{ID: "virus", Text: "The site is free of malware", IsCorrect: false},
				{ID: "gov", Text: "The site was vetted by a government body", IsCorrect: false},
			},
		},
		&models.ClickSelectQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "breach-response-click",
				Type:        models.TypeClickSelect,
				Difficulty:  models.DifficultyExpert,
				Prompt:      "A service you use announces a breach of hashed passwords. What should you do first?",
				Explanation: "Hashed or not, rotate the affected credential first, then any account sharing it.",
				Points:      25,
			},
			Options: []models.Option{
				{ID: "wait", Text: "Wait for the service to force a reset", IsCorrect: false},
				{ID: "rotate", Text: "Change that password, and anywhere it was reused", IsCorrect: true},
				{ID: "delete", Text: "Delete the account immediately", IsCorrect: false},
				{ID: "nothing", Text: "Nothing, hashes cannot be reversed", IsCorrect: false},
			},
		},
		&models.DragDropQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "data-sorting-drag",
				Type:        models.TypeDragDrop,
				Difficulty:  models.DifficultyBeginner,
				Prompt:      "Sort each piece of information into the right bucket.",
				Explanation: "Anything that can identify a person, directly or combined with other data, is personal.",
				Points:      20,
			},
			Items: []models.DragItem{
				{ID: "phone", Text: "A mobile phone number", Category: "personal"},
				{ID: "plate", Text: "A car licence plate", Category: "personal"},
				{ID: "recipe", Text: "A pancake recipe", Category: "nonpersonal"},
				{ID: "population", Text: "A city's population count", Category: "nonpersonal"},
			},
			Categories: []models.DragCategory{
				{ID: "personal", Name: "Personal data", Description: "Relates to an identifiable person"},
				{ID: "nonpersonal", Name: "Not personal data", Description: "Identifies no one"},
			},
		},
		&models.DragDropQuestion{
			BaseQuestion: models.BaseQuestion{
				ID:          "threat-safeguard-drag",
				Type:        models.TypeDragDrop,
				Difficulty:  models.DifficultyExpert,
				Prompt:      "Match each concept to threats or safeguards.",
				Explanation: "Ransomware and keyloggers attack you; encryption and backups protect you.",
				Points:      30,
			},
			Items: []models.DragItem{
				{ID: "ransomware", Text: "Ransomware", Category: "threat"},
				{ID: "keylogger", Text: "Keylogger", Category: "threat"},
				{ID: "encryption", Text: "Disk encryption", Category: "safeguard"},
				{ID: "backups", Text: "Offline backups", Category: "safeguard"},
			},
			Categories: []models.DragCategory{
				{ID: "threat", Name: "Threats", Description: "Puts your data at risk"},
				{ID: "safeguard", Name: "Safeguards", Description: "Protects your data"},
			},
		},
		seedWordGrid(),
	}
}

// seedWordGrid builds the word-fill puzzle. PHISH runs across the top row
// and HTTPS runs down the second column, crossing on the shared H.
func seedWordGrid() *models.WordGridQuestion {
	l := models.Letter
	return &models.WordGridQuestion{
		BaseQuestion: models.BaseQuestion{
			ID:          "security-terms-grid",
			Type:        models.TypeWordGrid,
			Difficulty:  models.DifficultyIntermediate,
			Prompt:      "Fill in the security terms hidden in the grid.",
			Explanation: "Phishing lures you into revealing secrets; HTTPS keeps the wire encrypted.",
			Points:      25,
		},
		Grid: [][]*string{
			{l("P"), nil, nil, nil, nil},
			{nil, nil, nil, nil, nil},
			{nil, l("T"), nil, nil, nil},
			{nil, nil, nil, nil, nil},
			{nil, nil, nil, nil, nil},
		},
		Solution: [][]*string{
			{l("P"), l("H"), l("I"), l("S"), l("H")},
			{nil, l("T"), nil, nil, nil},
			{nil, l("T"), nil, nil, nil},
			{nil, l("P"), nil, nil, nil},
			{nil, l("S"), nil, nil, nil},
		},
		Terms: []models.Term{
			{
				Word:     "PHISH",
				Clue:     "To lure someone into handing over credentials",
				Position: models.GridPosition{Row: 0, Col: 0, Direction: models.DirectionAcross},
			},
			{
				Word:     "HTTPS",
				Clue:     "The protocol behind the browser padlock",
				Position: models.GridPosition{Row: 0, Col: 1, Direction: models.DirectionDown},
			},
		},
		Hints: []string{
			"The across word is what that fake bank email is trying to do.",
			"The down word is four letters of protocol plus one of security.",
		},
	}
}
