// Package wsb builds Windows Sandbox (.wsb) configuration files.
//
// A Config buffers device settings, folder mappings and logon commands and
// renders them in one pass:
//
//	cfg := wsb.New()
//	cfg.SetNetworking(false)
//	cfg.AddMappedFolder(`C:\work\src`, `C:\src`, true)
//	cfg.AddLogonCommand(`explorer.exe C:\src`)
//	err := cfg.Save("dev.wsb")
//
// produces
//
//	<Configuration>
//	  <MappedFolders>
//	    <MappedFolder>
//	      <HostFolder>C:\work\src</HostFolder>
//	      <SandboxFolder>C:\src</SandboxFolder>
//	      <ReadOnly>true</ReadOnly>
//	    </MappedFolder>
//	  </MappedFolders>
//	  <LogonCommand>
//	    <Command>explorer.exe C:\src</Command>
//	  </LogonCommand>
//	  <vGPU>Disable</vGPU>
//	  <Networking>Disable</Networking>
//	  ...
//	</Configuration>
//
// Networking and ClipboardRedirection render as Default when enabled, since
// that is how Windows Sandbox spells their enabled state. MemoryInMB is only
// written when set.
package wsb
