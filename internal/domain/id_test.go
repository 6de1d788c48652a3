package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/domain"
)

func TestNewNodeID(t *testing.T) {
	id, err := domain.NewNodeID("proxy1.broker.example")
	require.NoError(t, err)
	assert.Equal(t, "proxy1.broker.example", id.String())

	_, err = domain.NewNodeID("")
	require.Error(t, err)

	_, err = domain.NewNodeID("Proxy1.Broker")
	require.Error(t, err)

	_, err = domain.NewNodeID("proxy one")
	require.Error(t, err)
}

func TestMsgIDTextRoundTrip(t *testing.T) {
	id := domain.NewMsgID()
	text, err := id.MarshalText()
	require.NoError(t, err)

	var back domain.MsgID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)
	assert.Equal(t, id.String(), back.String())
}

func TestMsgIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, domain.NewMsgID(), domain.NewMsgID())
}
