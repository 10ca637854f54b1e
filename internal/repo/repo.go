package repo

import (
	balancerepo "github.com/olobando-hub/BicPop-Web/internal/repo/balance-repo"
	bikerepo "github.com/olobando-hub/BicPop-Web/internal/repo/bike-repo"
	sessionrepo "github.com/olobando-hub/BicPop-Web/internal/repo/session-repo"
	"github.com/olobando-hub/BicPop-Web/internal/service/balanceservice"
	"github.com/olobando-hub/BicPop-Web/internal/service/catalogservice"
	"github.com/olobando-hub/BicPop-Web/internal/service/sessionservice"
)

type Repositories struct {
	BikeRepo    catalogservice.Repo
	BalanceRepo balanceservice.BalanceRepo
	SessionRepo sessionservice.Repo
}

// New builds the in-memory stores. The catalog is seeded and read-only.
func New() *Repositories {
	return &Repositories{
		BikeRepo:    bikerepo.NewSeeded(),
		BalanceRepo: balancerepo.New(),
		SessionRepo: sessionrepo.New(),
	}
}
