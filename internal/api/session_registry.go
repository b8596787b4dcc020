package api

import (
	"github.com/serenaclinic/serena/internal/security"
	"github.com/serenaclinic/serena/internal/services"
)

const (
	sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sessionIDLength   = 24
)

func (handler *Handler) newSession() *services.Session {
	return services.NewSession(handler.directory, handler.journal, handler.board, handler.latency, handler.location)
}

func (handler *Handler) storeSession(session *services.Session) (string, error) {
	sessionID, err := security.RandomString(sessionIDLength, sessionIDAlphabet)
	if err != nil {
		return "", err
	}
	handler.sessionsMu.Lock()
	handler.sessions[sessionID] = session
	handler.sessionsMu.Unlock()
	return sessionID, nil
}

func (handler *Handler) lookupSession(sessionID string) (*services.Session, bool) {
	handler.sessionsMu.Lock()
	defer handler.sessionsMu.Unlock()
	session, ok := handler.sessions[sessionID]
	return session, ok
}

func (handler *Handler) dropSession(sessionID string) {
	handler.sessionsMu.Lock()
	delete(handler.sessions, sessionID)
	handler.sessionsMu.Unlock()
}
