package router

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// handleWebsocket upgrades GET /ws/cycle and serves planning cycles on the connection until the
// client leaves or ctx is done. Each connection gets its own goroutine, cycles of all
// connections are serialized by the planner.
func (api *API) handleWebsocket(ctx context.Context) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, _, hs, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			api.log.Info("upgrade error", zap.Error(err), zap.String("remote", r.RemoteAddr))
			return
		}
		// the server's request deadlines would otherwise outlive the handler
		_ = conn.SetDeadline(time.Time{})

		api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
			zap.String("protocol", hs.Protocol))

		user := api.hub.Register(conn)

		go func() {
			defer api.hub.Remove(user)
			for {
				if ctx.Err() != nil {
					return
				}
				if err := user.PlanCycle(ctx); err != nil {
					if isClosed(err) {
						api.log.Info("user disconnected from websocket server", zap.Uint("user", user.ID()))
					} else {
						api.log.Error("error planning cycle", zap.Uint("user", user.ID()), zap.Error(err))
					}
					return
				}
			}
		}()
	}
}

func isClosed(err error) bool {
	var closed wsutil.ClosedError
	return errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
