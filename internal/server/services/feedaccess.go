package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/server/auth"
	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
)

// FeedAccessService issues and checks the signed tokens that let a client
// subscribe to the live feed.
type FeedAccessService struct {
	feedAddr         string
	jwtSecret        []byte
	validityDuration time.Duration
}

func NewFeedAccessService(cfg *config.Config) *FeedAccessService {
	return &FeedAccessService{
		feedAddr:         cfg.PublicFeedAddr,
		jwtSecret:        []byte(cfg.SecretKey),
		validityDuration: cfg.FeedTokenValidityDuration,
	}
}

// Issue returns the feed address plus a token bound to clientID.
func (s *FeedAccessService) Issue(clientID string) (*models.FeedConfig, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, common.ErrInvalidRequest
	}

	token, expiresAt, err := auth.GenerateToken(clientID, s.jwtSecret, s.validityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing feed token: %w", err)
	}

	return &models.FeedConfig{FeedAddr: s.feedAddr, FeedToken: token, ExpiresAt: expiresAt}, nil
}

// Verify returns the client id carried by token.
func (s *FeedAccessService) Verify(token string) (string, error) {
	return auth.GetClientIDFromToken(token, s.jwtSecret)
}
