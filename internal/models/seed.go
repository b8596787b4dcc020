package models

// SeedAccount describes one demo account created on first run.
type SeedAccount struct {
	ID          string
	Name        string
	Email       string
	Secret      string
	Role        string
	TherapistID string
	AvatarURL   string
}

// DefaultSeedAccounts returns the demo clinic: two patients assigned to one
// therapist. All demo accounts share the secret "123".
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{
			ID:          "u1",
			Name:        "Sofia Luz",
			Email:       "sofia@exemplo.com",
			Secret:      "123",
			Role:        RolePatient,
			TherapistID: "t1",
			AvatarURL:   "https://picsum.photos/seed/sofia/200/200",
		},
		{
			ID:          "u2",
			Name:        "João Silva",
			Email:       "joao@exemplo.com",
			Secret:      "123",
			Role:        RolePatient,
			TherapistID: "t1",
			AvatarURL:   "https://picsum.photos/seed/joao/200/200",
		},
		{
			ID:        "t1",
			Name:      "Dr. Andre Santos",
			Email:     "andre@clinica.com",
			Secret:    "123",
			Role:      RoleTherapist,
			AvatarURL: "https://picsum.photos/seed/andre/200/200",
		},
	}
}

// DefaultInvites returns the admin whitelist: only these emails may register.
// The two "novo" entries have no matching account yet and exercise the
// registration path.
func DefaultInvites() []Invite {
	return []Invite{
		{Email: "sofia@exemplo.com", Role: RolePatient, TherapistID: "t1"},
		{Email: "joao@exemplo.com", Role: RolePatient, TherapistID: "t1"},
		{Email: "andre@clinica.com", Role: RoleTherapist},
		{Email: "novo@paciente.com", Role: RolePatient, TherapistID: "t1"},
		{Email: "novo@terapeuta.com", Role: RoleTherapist},
	}
}

// DefaultSeedNotes are the demo journal notes, cycled over the seeded week.
func DefaultSeedNotes() []string {
	return []string{
		"Hoje o dia foi produtivo, me senti leve.",
		"Um pouco cansada, mas esperançosa.",
		"Tive uma discussão difícil no trabalho.",
		"A meditação matinal ajudou muito.",
		"Me sentindo um pouco sozinha hoje.",
	}
}

// DefaultSeedReflection is the demo reflection published by the therapist on
// the day the process starts.
func DefaultSeedReflection() Reflection {
	return Reflection{
		ID:          "r1",
		TherapistID: "t1",
		Content:     "A cura não significa que o dano nunca existiu. Significa que o dano não controla mais a sua vida.",
		AudioURL:    ReflectionAudioPlaceholder,
		Duration:    "2:15",
	}
}
