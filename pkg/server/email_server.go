package server

import (
	"net"
	"strconv"

	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/NeuralTrust/MailSlot/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	EmailServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
		// ResponseHeaders are applied to error responses rendered outside
		// the middleware chain.
		ResponseHeaders []middleware.HeaderSetter
	}
	EmailServer struct {
		*BaseServer
	}
)

func NewEmailServer(di EmailServerDI) *EmailServer {
	return &EmailServer{
		BaseServer: NewBaseServer(di.Config, di.Logger, di.ResponseHeaders...).WithRouters(di.Routers...),
	}
}

func (s *EmailServer) Name() string {
	return "email"
}

func (s *EmailServer) Run() error {
	addr := net.JoinHostPort(s.Config.Server.Host, strconv.Itoa(s.Config.Server.Port))
	s.Logger.WithField("addr", addr).Infof("Server running on port %d", s.Config.Server.Port)
	return s.Router.Listen(addr)
}
