package server

import (
	"net"
	"strconv"

	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/infra/prometheus"
	"github.com/NeuralTrust/MailSlot/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	OpsServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	// OpsServer exposes metrics, health and version on the metrics port.
	OpsServer struct {
		*BaseServer
	}
)

func NewOpsServer(di OpsServerDI) *OpsServer {
	prometheus.Initialize()
	return &OpsServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *OpsServer) Name() string {
	return "ops"
}

func (s *OpsServer) Run() error {
	addr := net.JoinHostPort(s.Config.Server.Host, strconv.Itoa(s.Config.Metrics.Port))
	s.Logger.WithField("addr", addr).Info("Starting ops server")
	return s.Router.Listen(addr)
}
