package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// streamRunWSHandler handles GET /runs/stream/ws?run_id=<id>: the WebSocket
// variant of the run event stream. Each event is sent as one text message in
// the envelope wire shape.
func (s *Server) streamRunWSHandler(c *echo.Context) error {
	runID := c.QueryParam("run_id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run_id is required")
	}
	ctx := c.Request().Context()

	sub, err := s.subscribeRun(ctx, runID)
	if err != nil {
		return err
	}
	hub := s.registry.Get(runID)
	defer func() {
		if hub != nil {
			hub.Unsubscribe(sub)
		} else {
			sub.Close()
		}
	}()

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}
	defer conn.CloseNow()

	for {
		ev, err := sub.Next(ctx)
		if err != nil {
			conn.Close(websocket.StatusNormalClosure, "run ended")
			return nil
		}
		payload, err := ev.MarshalJSON()
		if err != nil {
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			return nil
		}
	}
}
