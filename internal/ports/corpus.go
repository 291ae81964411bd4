package ports

import "github.com/renato0307/inboxsim/internal/domain"

// CorpusLoader reads the email corpus referenced by a study
type CorpusLoader interface {
	Load(path string) (*domain.Corpus, error)
}

// BodyRenderer turns an email's body resource into text and links
type BodyRenderer interface {
	Render(email domain.Email) (domain.Body, error)
	RenderFile(path string) (domain.Body, error)
}
