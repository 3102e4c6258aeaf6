package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/behaviorplanner/pkg/util"
	"go.uber.org/zap"
)

// User. one websocket connection streaming planning cycles.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) ID() uint {
	return u.id
}

// readRequest returns nil, nil after a control frame.
func (u *User) readRequest() (*cycleRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &cycleRequest{}
	decoder := json.NewDecoder(r)
	err = decoder.Decode(req)
	// the next frame starts after this one's payload
	if _, drainErr := io.Copy(io.Discard, r); drainErr != nil {
		return nil, drainErr
	}
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid cycle message")
	}
	return req, nil
}

// PlanCycle reads one cycle message, runs it and writes the costs back. Malformed messages get
// an error message, the connection stays open. A returned error ends the connection.
func (u *User) PlanCycle(ctx context.Context) error {
	req, err := u.readRequest()
	if err != nil {
		if util.ErrorCode(err) == util.ErrBadParamInput {
			return u.writeError(http.StatusBadRequest, err)
		}
		return err
	}
	if req == nil {
		return nil
	}

	if err := util.ValidateStruct(req); err != nil {
		return u.writeError(http.StatusBadRequest, err)
	}

	candidates := toCandidates(req.Candidates)
	res, line, err := u.hub.plannerService.Cycle(ctx, toObservations(req.Observations), req.EgoS, candidates)
	if err != nil {
		u.hub.log.Error("planning cycle failed", zap.Uint("user", u.id), zap.Error(err))
		return u.writeError(http.StatusInternalServerError, err)
	}

	return u.write(envelope{"data": NewCostsResponse(res, candidates, line)})
}

func (u *User) writeError(status int, err error) error {
	return u.write(envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": err.Error(),
	}})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// Hub keeps the open websocket connections.
type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	plannerService PlannerService
	log            *zap.Logger
}

func NewHub(plannerService PlannerService, log *zap.Logger) *Hub {
	return &Hub{
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		plannerService: plannerService,
		log:            log,
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

// Remove closes the user's connection and forgets it.
func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(user)
}

func (h *Hub) remove(user *User) {
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)
	_ = user.conn.Close()

	// ids are handed out in increasing order
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) RemoveAllUser() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for len(h.us) > 0 {
		h.remove(h.us[0])
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}
