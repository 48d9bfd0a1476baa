// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "fmt"

// Channel identifica um canal de venda do restaurante
type Channel string

const (
	ChannelBalcao   Channel = "balcao"
	ChannelMesa     Channel = "mesa"
	ChannelTelefone Channel = "telefone"
	ChannelOlga     Channel = "olga"
	ChannelIfood    Channel = "ifood"
)

// ChannelInfo descreve um canal para apresentação
type ChannelInfo struct {
	ID            Channel `json:"id"`
	Label         string  `json:"label"`
	Color         string  `json:"color"`
	HasServiceTax bool    `json:"has_service_tax"`
}

// Channels é a lista fechada de canais, na ordem de exibição
var Channels = []ChannelInfo{
	{ID: ChannelBalcao, Label: "Balcão", Color: "#4F81BD"},
	{ID: ChannelMesa, Label: "Mesa", Color: "#70AD47"},
	{ID: ChannelTelefone, Label: "Telefone", Color: "#FBBC04", HasServiceTax: true},
	{ID: ChannelOlga, Label: "Olga", Color: "#FF9900", HasServiceTax: true},
	{ID: ChannelIfood, Label: "iFood", Color: "#FF0000", HasServiceTax: true},
}

// AllChannels retorna os IDs de todos os canais conhecidos
func AllChannels() []Channel {
	ids := make([]Channel, 0, len(Channels))
	for _, c := range Channels {
		ids = append(ids, c.ID)
	}
	return ids
}

// Info retorna os dados de apresentação do canal
func (c Channel) Info() (ChannelInfo, bool) {
	for _, info := range Channels {
		if info.ID == c {
			return info, true
		}
	}
	return ChannelInfo{}, false
}

// Label retorna o nome de exibição do canal
func (c Channel) Label() string {
	if info, ok := c.Info(); ok {
		return info.Label
	}
	return string(c)
}

// HasServiceTax indica se o canal cobra taxa de serviço
func (c Channel) HasServiceTax() bool {
	info, ok := c.Info()
	return ok && info.HasServiceTax
}

// Valid indica se o canal pertence à enumeração
func (c Channel) Valid() bool {
	_, ok := c.Info()
	return ok
}

// ParseChannel converte o ID textual em Channel
func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.Valid() {
		return "", fmt.Errorf("canal desconhecido: %s", s)
	}
	return c, nil
}
