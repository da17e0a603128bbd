package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codebytes2/gamerec/internal/command"
	"github.com/codebytes2/gamerec/internal/datasources/mysql"
)

// Constructs every command exactly the way Setup does, so a changed
// constructor signature fails this package instead of surfacing at deploy.
func TestCommandConstructorWiring(t *testing.T) {
	store := mysql.New(nil)

	assert.NotNil(t, command.NewRegisterUser(store, store))
	assert.NotNil(t, command.NewLoginUser(store, nil))
	assert.NotNil(t, command.NewCreateProduct(store))
	assert.NotNil(t, command.NewUpdateProduct(store, store))
	assert.NotNil(t, command.NewDeleteProduct(store, store, store))
	assert.NotNil(t, command.NewCreateRating(store, store, store, store))
	assert.NotNil(t, command.NewComputeRecommendations(store, store, store, store, store, store))
	assert.NotNil(t, command.NewCreateTournament(store))
	assert.NotNil(t, command.NewDeleteTournament(store, store))
	assert.NotNil(t, command.NewJoinTournament(store, store, store, store, store, store))
}
