package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/finsight-dev/finsight/internal/api"
	"github.com/finsight-dev/finsight/internal/chart"
	"github.com/finsight-dev/finsight/internal/config"
	"github.com/finsight-dev/finsight/internal/model"
	"github.com/finsight-dev/finsight/internal/session"
	"github.com/finsight-dev/finsight/internal/ui"
)

// testApp wires an App against a fake backend. Screen output and
// notifications land in separate buffers; stdin answers "y" to every
// confirmation.
type testApp struct {
	*App
	out    *bytes.Buffer
	notify *bytes.Buffer
}

func newTestApp(t *testing.T, handler http.Handler) *testApp {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	sess.SetToken("test-token")
	sess.SetUser(7, "Budi")

	store := session.NewStore(t.TempDir())

	out := &bytes.Buffer{}
	notify := &bytes.Buffer{}
	app := &App{
		Config:  config.Default(),
		Session: sess,
		Store:   store,
		API:     api.NewClient(srv.URL, 5*time.Second, sess, zerolog.Nop()),
		Charts:  chart.NewRegistry(),
		Notify:  ui.NewNotifier(notify),
		Out:     out,
		In:      strings.NewReader("y\ny\ny\n"),
	}
	return &testApp{App: app, out: out, notify: notify}
}

func parseTxs(t *testing.T, data string) []model.Transaction {
	t.Helper()
	var txs []model.Transaction
	require.NoError(t, json.Unmarshal([]byte(data), &txs))
	return txs
}
