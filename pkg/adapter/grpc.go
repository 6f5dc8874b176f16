package adapter

import (
	"context"
	"fmt"
	"io"

	agentv1 "github.com/hiveflow/hiveflow/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCInvoker implements Invoker by calling the agent runner service over
// gRPC server streaming.
type GRPCInvoker struct {
	conn   *grpc.ClientConn
	client agentv1.AgentServiceClient
}

// NewGRPCInvoker creates an invoker connected to the agent runner at addr.
func NewGRPCInvoker(addr string) (*GRPCInvoker, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent runner at %s: %w", addr, err)
	}
	return &GRPCInvoker{
		conn:   conn,
		client: agentv1.NewAgentServiceClient(conn),
	}, nil
}

// Invoke opens the server stream and returns a channel of decoded chunks.
// Transport errors after the stream opens arrive in-band as ErrorChunk.
func (c *GRPCInvoker) Invoke(ctx context.Context, agent AgentRef, input string) (<-chan Chunk, error) {
	stream, err := c.client.Invoke(ctx, toProtoRequest(agent, input))
	if err != nil {
		return nil, fmt.Errorf("gRPC Invoke call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error()}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCInvoker) Close() error {
	return c.conn.Close()
}

func toProtoRequest(agent AgentRef, input string) *agentv1.InvokeRequest {
	return &agentv1.InvokeRequest{
		RunId:     agent.RunID,
		AgentId:   agent.ID,
		AgentName: agent.Name,
		AgentType: string(agent.Type),
		Role:      agent.Role,
		Agent:     agent.Agent,
		Team:      agent.Team,
		Input:     input,
	}
}

func fromProtoResponse(resp *agentv1.InvokeResponse) Chunk {
	switch c := resp.Content.(type) {
	case *agentv1.InvokeResponse_Text:
		return &TextChunk{Delta: c.Text.Delta}
	case *agentv1.InvokeResponse_Reasoning:
		return &ReasoningChunk{Delta: c.Reasoning.Delta}
	case *agentv1.InvokeResponse_ToolCall:
		return &ToolCallChunk{
			CallID:    c.ToolCall.CallId,
			Name:      c.ToolCall.Name,
			Arguments: c.ToolCall.Arguments,
		}
	case *agentv1.InvokeResponse_ToolResult:
		return &ToolResultChunk{
			CallID: c.ToolResult.CallId,
			Result: c.ToolResult.Result,
		}
	case *agentv1.InvokeResponse_Final:
		return &FinalChunk{Text: c.Final.Text}
	case *agentv1.InvokeResponse_Error:
		return &ErrorChunk{Message: c.Error.Message}
	default:
		return nil
	}
}
