package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"nhooyr.io/websocket"

	"painttanks/utils"
)

const (
	subscriberBuffer = 16
	writeTimeout     = 5 * time.Second
)

// subscriber is a spectator. It only ever receives snapshot frames.
type subscriber struct {
	id       ksuid.KSUID
	messages chan []byte
	c        *websocket.Conn
}

type Server struct {
	subscribers map[*subscriber]struct{}
	mu          sync.RWMutex
	serveMux    http.ServeMux
	latest      []byte

	arena   *arena
	origins []string
	tick    time.Duration
	sync    time.Duration
	log     *zap.Logger
}

// NewServer builds the match but does not start it; call Loop for that.
func NewServer(cfg *utils.Config, log *zap.Logger) (*Server, error) {
	a, err := newArena(cfg, log)
	if err != nil {
		return nil, err
	}

	s := &Server{
		subscribers: make(map[*subscriber]struct{}),
		arena:       a,
		origins:     cfg.Server.Origins,
		tick:        cfg.Server.TickInterval(),
		sync:        cfg.Server.SnapshotInterval(),
		log:         log.With(zap.Stringer("match", a.id)),
	}

	s.serveMux.HandleFunc("/", s.onConnection)
	s.serveMux.HandleFunc("/debug/pprof/", pprof.Index)
	s.serveMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	s.serveMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	s.serveMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	s.serveMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return s, nil
}

// Loop runs the match until ctx is done. Every simulation tick happens on
// this goroutine.
func (s *Server) Loop(ctx context.Context) error {
	tick := time.NewTicker(s.tick)
	defer tick.Stop()
	sync := time.NewTicker(s.sync)
	defer sync.Stop()

	s.log.Info("match started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("match stopped", zap.Int64("tick", s.arena.sim.CurrentTick()))
			return nil

		case <-sync.C:
			frame, err := s.arena.frame()
			if err != nil {
				return err
			}
			s.publish(frame)

		case <-tick.C:
			s.arena.step()
		}
	}
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Server) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *Server) onConnection(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.origins,
	})
	if err != nil {
		s.log.Warn("websocket accept", zap.Error(err))
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	sub := &subscriber{
		id:       ksuid.New(),
		messages: make(chan []byte, subscriberBuffer),
		c:        c,
	}
	log := s.log.With(zap.Stringer("spectator", sub.id), zap.String("remote", r.RemoteAddr))
	log.Info("spectator connected")

	err = s.handleConnection(r.Context(), sub)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Info("spectator left")
	default:
		if !errors.Is(err, context.Canceled) {
			log.Info("spectator dropped", zap.Error(err))
		}
	}
}

func (s *Server) handleConnection(ctx context.Context, sub *subscriber) error {
	// Spectators have nothing to say; CloseRead handles their control frames
	// and cancels ctx once they hang up.
	ctx = sub.c.CloseRead(ctx)

	// Registering and seeding under one lock keeps the first frame ahead of
	// anything publish sends.
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	if s.latest != nil {
		sub.messages <- s.latest
	}
	s.mu.Unlock()
	defer s.removeSubscriber(sub)

	for {
		select {
		case msg := <-sub.messages:
			if err := write(ctx, sub.c, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func write(ctx context.Context, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.Write(ctx, websocket.MessageText, msg)
}

// publish hands frame to every spectator. Spectators that fall behind are
// disconnected rather than allowed to stall the match.
func (s *Server) publish(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = frame
	for sub := range s.subscribers {
		select {
		case sub.messages <- frame:
		default:
			go sub.c.Close(websocket.StatusPolicyViolation, "spectator too slow")
		}
	}
}

// Run serves a match until interrupted. args follow os.Args: args[0] names
// the sub-command, then flags, then an optional listen address.
func Run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	configFile := fs.String("config", "", "TOML config file")
	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		cfg.Server.Address = fs.Arg(0)
	}

	log, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	server, err := NewServer(cfg, log)
	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return err
	}
	log.Info("listening", zap.String("url", fmt.Sprintf("http://%v", l.Addr())))

	hs := &http.Server{
		Handler:      server,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := hs.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return server.Loop(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("terminating", zap.Error(context.Cause(ctx)))
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdown)
	})
	return g.Wait()
}

// LoadConfig reads fileName over the defaults, or returns the defaults when
// no file is given.
func LoadConfig(fileName string) (*utils.Config, error) {
	if fileName == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.ReadTOML(fileName)
}
