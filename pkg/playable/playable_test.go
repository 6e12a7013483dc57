package playable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(0, "pot is %d", 5)
	assert.Equal(t, "pot is 5", lm.Message)
	assert.Nil(t, lm.PlayerIDs)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.Len(t, lm.UUID, 36)
}

func TestSimpleLogMessage_withPlayerID(t *testing.T) {
	lm := SimpleLogMessage(1, "{} bet %d", 4)
	assert.Equal(t, "{} bet 4", lm.Message)
	assert.Equal(t, []int64{1}, lm.PlayerIDs)
}

func TestAdditionalData_GetInt(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"amount":20,"target":2.5,"name":"x"}`), &data))

	val, ok := data.GetInt("amount")
	a.True(ok)
	a.Equal(20, val)

	_, ok = data.GetInt("target")
	a.False(ok)

	_, ok = data.GetInt("name")
	a.False(ok)

	_, ok = data.GetInt("missing")
	a.False(ok)

	val, ok = AdditionalData{"amount": 7}.GetInt("amount")
	a.True(ok)
	a.Equal(7, val)

	val, ok = AdditionalData{"amount": int64(9)}.GetInt("amount")
	a.True(ok)
	a.Equal(9, val)
}

func TestOK(t *testing.T) {
	a := assert.New(t)
	a.Equal(&Response{Key: "status", Value: "OK"}, OK())
	a.Equal(&Response{Key: "status", Value: "OK", Context: "abc"}, OK("abc"))
}
