package api

import (
	"testing"

	"github.com/dawar-shafaque/restaurant-application/config"

	"github.com/stretchr/testify/assert"
)

func TestResolveEndpointsFollowsTopology(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig = config.Config{
		APIType:          "k8s",
		AWSBaseURL:       "https://aws.example.com/api",
		K8SBaseURL:       "https://k8s.example.com/api",
		LoginPath:        "/auth/sign-in",
		TablesPath:       "/bookings/tables",
		ReservationsPath: "/reservations",
	}

	eps := ResolveEndpoints()
	assert.Equal(t, "https://k8s.example.com/api/auth/sign-in", eps.Login)
	assert.Equal(t, "https://k8s.example.com/api/bookings/tables", eps.Tables)
	assert.Equal(t, "https://k8s.example.com/api/reservations", eps.Reservations)

	config.AppConfig.APIType = "aws"
	eps = ResolveEndpoints()
	assert.Equal(t, "https://aws.example.com/api/auth/sign-in", eps.Login)
}
